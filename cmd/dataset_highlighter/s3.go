package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Client is the subset of the S3 API used to read a dataset.
type S3Client interface {
	ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output,
		error)
	GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// maxJSONLLine bounds a single JSONL record.
const maxJSONLLine = 64 * 1024 * 1024

func isS3URI(uri string) bool {
	return strings.HasPrefix(uri, "s3://")
}

// parseS3URI splits `s3://bucket/prefix` into its bucket and prefix.
func parseS3URI(uri string) (bucket string, prefix string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%s is not an s3://bucket/prefix URI", uri)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// NewS3Client creates a client from the environment's AWS credentials.
// An empty endpoint uses AWS itself, otherwise path style addressing is
// used so S3 compatible stores work.
func NewS3Client(region string, endpoint string) (S3Client, error) {
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}
	if endpoint != "" {
		config = config.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// getObjectsS3Recursively sends every object under prefix to objects,
// following continuation tokens until the listing is exhausted.
func getObjectsS3Recursively(
	svc S3Client,
	bucket string,
	prefix string,
	objects chan<- *s3.Object,
) error {
	var continuation *string
	for {
		output, err := svc.ListObjectsV2(&s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return fmt.Errorf("error listing s3://%s/%s: %w", bucket,
				prefix, err)
		}
		for _, object := range output.Contents {
			objects <- object
		}
		if !aws.BoolValue(output.IsTruncated) ||
			output.NextContinuationToken == nil {
			return nil
		}
		continuation = output.NextContinuationToken
	}
}

func getObjectBody(svc S3Client, bucket string, key string) (
	io.ReadCloser,
	error,
) {
	output, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching s3://%s/%s: %w", bucket, key,
			err)
	}
	if output == nil || output.Body == nil {
		return nil, fmt.Errorf("s3://%s/%s has no body", bucket, key)
	}
	return output.Body, nil
}

// fetchTextFileS3 returns the full contents of a text object.
func fetchTextFileS3(svc S3Client, bucket string, key string) (string,
	error) {
	body, err := getObjectBody(svc, bucket, key)
	if err != nil {
		return "", err
	}
	defer body.Close()
	text, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

type jsonlRecord struct {
	Text string `json:"text"`
}

// readJSONLTexts joins the `text` field of every record with single spaces.
// Blank lines are skipped.
func readJSONLTexts(reader io.Reader) (string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLLine)
	texts := make([]string, 0)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var record jsonlRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return "", fmt.Errorf("line %d: %w", lineNum, err)
		}
		texts = append(texts, record.Text)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(texts, " "), nil
}

// fetchJSONLFileS3 returns the texts of a JSONL object, see readJSONLTexts.
func fetchJSONLFileS3(svc S3Client, bucket string, key string) (string,
	error) {
	body, err := getObjectBody(svc, bucket, key)
	if err != nil {
		return "", err
	}
	defer body.Close()
	text, err := readJSONLTexts(body)
	if err != nil {
		return "", fmt.Errorf("s3://%s/%s: %w", bucket, key, err)
	}
	return text, nil
}

// ReadTextsS3
// Lists the `.txt` and `.jsonl` objects under an s3://bucket/prefix URI and
// returns a TextsIterator over their contents. Objects are fetched one
// ahead of the consumer.
func ReadTextsS3(svc S3Client, uri string, sanitize bool) (TextsIterator,
	error) {
	bucket, prefix, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}

	objects := make(chan *s3.Object, 64)
	var listErr error
	go func() {
		listErr = getObjectsS3Recursively(svc, bucket, prefix, objects)
		close(objects)
	}()

	texts := make(chan NamedText, 4)
	go func() {
		defer close(texts)
		for object := range objects {
			key := aws.StringValue(object.Key)
			var text string
			var fetchErr error
			switch {
			case strings.HasSuffix(key, ".txt"):
				text, fetchErr = fetchTextFileS3(svc, bucket, key)
			case strings.HasSuffix(key, ".jsonl"):
				text, fetchErr = fetchJSONLFileS3(svc, bucket, key)
			default:
				continue
			}
			if fetchErr != nil {
				log.Fatal(fetchErr)
			}
			var reader io.RuneReader = strings.NewReader(text)
			if sanitize {
				reader = CreateTextSanitizer(strings.NewReader(text))
			}
			texts <- NamedText{
				Path:   fmt.Sprintf("s3://%s/%s", bucket, key),
				Size:   aws.Int64Value(object.Size),
				Reader: reader,
			}
		}
		if listErr != nil {
			log.Fatal(listErr)
		}
	}()

	return func() *NamedText {
		if text, ok := <-texts; !ok {
			return nil
		} else {
			log.Print("Reading ", text.Path)
			return &text
		}
	}, nil
}
