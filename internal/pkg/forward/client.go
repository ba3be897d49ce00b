package forward

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"darkai/internal/config"
	"darkai/internal/pkg/logger"
)

// EmptyResponseMessage 上游返回空内容时的固定错误信息
const EmptyResponseMessage = "Empty response from remote API"

var (
	ErrEmptyResponse     = errors.New(EmptyResponseMessage)
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// Fields 转发给上游的参数（GET 为查询参数，POST 为表单）
type Fields map[string]string

// Values 转换为 url.Values
func (f Fields) Values() url.Values {
	values := make(url.Values, len(f))
	for k, v := range f {
		values.Set(k, v)
	}
	return values
}

// StatusError 上游返回非 2xx 状态码
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	kind := "unexpected status"
	switch {
	case e.StatusCode >= 300 && e.StatusCode < 400:
		kind = "redirect response"
	case e.StatusCode >= 400 && e.StatusCode < 500:
		kind = "client error"
	case e.StatusCode >= 500:
		kind = "server error"
	}
	return fmt.Sprintf("%s '%s' for url '%s'", kind, e.Status, e.URL)
}

// Result 转发结果
// OK 为 true 时 Payload 有效，否则 Err 为错误描述
type Result struct {
	OK      bool
	Payload Payload
	Err     string
}

// Success 构造成功结果
func Success(p Payload) Result {
	return Result{OK: true, Payload: p}
}

// Failure 构造失败结果
func Failure(msg string) Result {
	return Result{OK: false, Err: msg}
}

// Client 上游转发客户端
// 创建后只读，可被多个请求并发使用
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	parseJSON  bool
}

// NewClient 根据上游配置创建转发客户端
func NewClient(cfg *config.UpstreamConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			// 不跟随重定向，3xx 按失败返回
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
		parseJSON: cfg.ParseJSON,
	}
}

// Forward 将 fields 转发到 endpointURL 并归一化结果
// 只请求一次，不重试；任何错误都转换为失败结果
func (c *Client) Forward(ctx context.Context, method, endpointURL string, fields Fields) Result {
	// 客户端断开不影响上游调用，只受超时约束
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	l := logger.FromContext(ctx)
	start := time.Now()

	payload, err := c.do(ctx, method, endpointURL, fields)
	if err != nil {
		l.Warn().
			Err(err).
			Str("method", method).
			Str("endpoint", endpointURL).
			Dur("latency", time.Since(start)).
			Msg("upstream request failed")
		return Failure(err.Error())
	}

	l.Debug().
		Str("method", method).
		Str("endpoint", endpointURL).
		Dur("latency", time.Since(start)).
		Msg("upstream request succeeded")
	return Success(payload)
}

func (c *Client) do(ctx context.Context, method, endpointURL string, fields Fields) (Payload, error) {
	req, err := c.newRequest(ctx, method, endpointURL, fields)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        req.URL.String(),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	payload := decodePayload(body, c.parseJSON)
	if payload.IsEmpty() {
		return nil, ErrEmptyResponse
	}
	return payload, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpointURL string, fields Fields) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)

	switch strings.ToUpper(method) {
	case http.MethodGet:
		u, perr := url.Parse(endpointURL)
		if perr != nil {
			return nil, fmt.Errorf("parse endpoint: %w", perr)
		}
		q := u.Query()
		for k, v := range fields {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(fields.Values().Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
