package utils

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinioClient connects to the object store and makes sure the bucket
// exists with a public read policy, so attachment URLs are directly usable
// by the chat UI.
func NewMinioClient(endpoint, accessKey, secretKey, bucketName string) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, err
	}

	if !exists {
		err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, err
		}

		publicPolicy := `{
			"Version": "2012-10-17",
			"Statement": [
				{
					"Action": ["s3:GetObject"],
					"Effect": "Allow",
					"Principal": "*",
					"Resource": "arn:aws:s3:::` + bucketName + `/*"
				}
			]
		}`

		err = client.SetBucketPolicy(ctx, bucketName, publicPolicy)
		if err != nil {
			return nil, err
		}
	}

	return client, nil
}
