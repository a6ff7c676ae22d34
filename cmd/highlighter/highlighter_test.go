package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wbrown/text_to_sounds"
)

func TestLimitText_DefaultKeepsLongInput(t *testing.T) {
	long := strings.Repeat("the cat ", text_to_sounds.MaxTextLength)
	assert.Equal(t, long, limitText(long, defaultMaxLength))
}

func TestLimitText(t *testing.T) {
	assert.Equal(t, "the", limitText("the cat", 3))
	assert.Equal(t, "the cat", limitText("the cat", 10))
	assert.Equal(t, "żó", limitText("żółw", 2))
}
