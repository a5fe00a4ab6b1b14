package config

import "os"

var (
	AWSRegion string
)

func LoadAWSConfig() error {
	// optional ENV vars
	AWSRegion = "us-east-1"
	if regionValue, regionExists := os.LookupEnv("WPOSES_AWS_REGION"); regionExists && regionValue != "" {
		AWSRegion = regionValue
	} else if regionValue, regionExists := os.LookupEnv("AWS_REGION"); regionExists && regionValue != "" {
		AWSRegion = regionValue
	}

	return nil
}
