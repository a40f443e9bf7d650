package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	MappingFile    string
	HostSource     string
	AssetBaseDir   string
	AssetDir       string
	OutputFile     string
	SnippetFile    string
	ContainerClass string
	AffiliateURL   string

	FetchStrategy    string
	ChromeDriverPath string
	SeleniumPort     int

	LogLevel string

	MongoURI      string
	MongoDatabase string

	AWSRegion     string
	AWSBucketName string
	S3Prefix      string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MappingFile = getEnv("MAPPING_FILE", "links.xlsx")
	HostSource = os.Getenv("HOST_SOURCE")
	AssetBaseDir = getEnv("ASSET_BASE_DIR", ".")
	AssetDir = getEnv("ASSET_DIR", "product_images")
	OutputFile = getEnv("OUTPUT_FILE", "updated_content.html")
	SnippetFile = getEnv("SNIPPET_FILE", "output_snippet.html")
	ContainerClass = getEnv("CONTAINER_CLASS", "entry-content")
	AffiliateURL = os.Getenv("AFFILIATE_URL")

	FetchStrategy = getEnv("FETCH_STRATEGY", "http")
	ChromeDriverPath = getEnv("CHROMEDRIVER_PATH", "/usr/local/bin/chromedriver")
	SeleniumPort = getEnvAsInt("SELENIUM_PORT", 4444)

	LogLevel = getEnv("LOG_LEVEL", "info")

	// Empty disables the run log
	MongoURI = os.Getenv("MONGO_URI")
	MongoDatabase = getEnv("MONGO_DATABASE", "product_cards")

	// Empty disables the S3 asset mirror
	AWSRegion = getEnv("AWS_REGION", "ap-south-1")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	S3Prefix = getEnv("S3_PREFIX", "product_images")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}
