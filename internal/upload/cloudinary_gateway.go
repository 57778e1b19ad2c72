package upload

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// Gateway uploads image files to the media CDN on behalf of the admin panel.
type Gateway interface {
	UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (*UploadResult, error)
}

// UploadResult is the subset of the Cloudinary response the client needs.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type cloudinaryGateway struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

func NewCloudinaryGateway(cloudName, apiKey, apiSecret string) Gateway {
	if cloudName == "" {
		logger.L().Warn("Cloudinary cloud name is empty")
	}

	return &cloudinaryGateway{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   cloudinaryBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// signature is the hex SHA-1 over the sorted parameter string with the API
// secret appended, per the Cloudinary signed-upload contract.
func (g *cloudinaryGateway) signature(folder string, timestamp int64) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, g.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

func (g *cloudinaryGateway) UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (*UploadResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("method", "UploadImage"),
		zap.String("filename", filename),
		zap.String("folder", folder),
	)

	timestamp := time.Now().Unix()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"api_key":   g.apiKey,
		"timestamp": strconv.FormatInt(timestamp, 10),
		"folder":    folder,
		"signature": g.signature(folder, timestamp),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/image/upload", g.baseURL, g.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		log.Error("failed creating upload request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	log.Info("uploading image to Cloudinary")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Cloudinary request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cloudinary response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Cloudinary returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("cloudinary error: %s", string(bodyBytes))
	}

	var res struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding Cloudinary response", zap.Error(err))
		return nil, err
	}

	log.Info("image uploaded",
		zap.String("public_id", res.PublicID),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
	)

	return &UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
	}, nil
}
