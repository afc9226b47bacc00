package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"hardings-auto/go_backend/internal/domain/quote/share"
)

const (
	DefaultBaseURL  = "https://api.telegram.org"
	maxCaptionRunes = 1024
)

// Sender uploads rendered quotes to a fixed chat through the Bot API.
type Sender struct {
	BaseURL string
	Token   string
	ChatID  string
	HTTP    *http.Client
}

func New(baseURL, token, chatID string) *Sender {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Sender{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		ChatID:  chatID,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Sender) Configured() bool {
	return s != nil && s.Token != "" && s.ChatID != ""
}

func (s *Sender) Send(ctx context.Context, msg share.Message, pdf []byte) error {
	if !s.Configured() {
		return share.ErrNotConfigured
	}
	urlStr := fmt.Sprintf("%s/bot%s/sendDocument", s.BaseURL, s.Token)
	body, contentType := buildDocumentMultipart(s.ChatID, caption(msg.Text), msg.Filename, msg.MimeType, pdf)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	client := s.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("telegram: sendDocument failed chat_id=%s file=%s err=%v", s.ChatID, msg.Filename, err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("telegram: sendDocument status=%d chat_id=%s body=%s", resp.StatusCode, s.ChatID, strings.TrimSpace(string(b)))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	log.Printf("telegram: quote sent chat_id=%s file=%s bytes=%d", s.ChatID, msg.Filename, len(pdf))
	return nil
}

func caption(text string) string {
	r := []rune(text)
	if len(r) <= maxCaptionRunes {
		return text
	}
	return string(r[:maxCaptionRunes])
}

func buildDocumentMultipart(chatID, caption, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("chat_id", chatID)
	if caption != "" {
		_ = writer.WriteField("caption", caption)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, _ := writer.CreatePart(header)
	_, _ = part.Write(data)
	_ = writer.Close()
	return body, writer.FormDataContentType()
}
