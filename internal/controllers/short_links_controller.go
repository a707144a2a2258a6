package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlink/internal/resolver"
	"github.com/fsdevblog/shortlink/web"
)

type ShortLinkController struct {
	linkService ShortLinkService
	baseURL     *url.URL
}

// NewShortLinkController создает контроллер. baseURL может быть nil,
// тогда адрес короткой ссылки берется из запроса.
func NewShortLinkController(linkService ShortLinkService, baseURL *url.URL) *ShortLinkController {
	return &ShortLinkController{
		linkService: linkService,
		baseURL:     baseURL,
	}
}

type createShortLinkRequest struct {
	URL    string `json:"url" binding:"required"`
	Custom string `json:"custom"`
}

type createShortLinkResponse struct {
	Result string `json:"result"`
}

// Index отдает страницу с формой.
func (s *ShortLinkController) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// CreateShortLink принимает форму с полями originalUrl и customUrl.
// Результат передается браузеру во фрагменте редиректа на главную: `/#<короткая ссылка>`.
func (s *ShortLinkController) CreateShortLink(ctx *gin.Context) {
	if !isFormRequest(ctx) {
		_ = ctx.Error(ErrInvalidRequest)
		ctx.String(http.StatusBadRequest, msgInvalidRequest)
		return
	}
	rawURL, ok := ctx.GetPostForm("originalUrl")
	if !ok {
		_ = ctx.Error(ErrInvalidRequest)
		ctx.String(http.StatusBadRequest, msgInvalidRequest)
		return
	}

	shortLink, status, msg := s.create(ctx, rawURL, ctx.PostForm("customUrl"))
	if status != 0 {
		ctx.String(status, msg)
		return
	}

	// Не ctx.Redirect: http.Redirect чистит относительный путь и склеил бы `//` в ссылке.
	ctx.Header("Location", "/#"+shortLink)
	ctx.Status(http.StatusFound)
}

// CreateShortLinkJSON принимает {"url": "...", "custom": "..."} и отвечает {"result": "<короткая ссылка>"}.
func (s *ShortLinkController) CreateShortLinkJSON(ctx *gin.Context) {
	var req createShortLinkRequest
	if !isJSONRequest(ctx) {
		_ = ctx.Error(ErrInvalidRequest)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	shortLink, status, msg := s.create(ctx, req.URL, req.Custom)
	if status != 0 {
		ctx.JSON(status, gin.H{"error": msg})
		return
	}
	ctx.JSON(http.StatusCreated, createShortLinkResponse{Result: shortLink})
}

// Redirect разрешает последний сегмент пути и перенаправляет на сохраненный URL или на главную.
func (s *ShortLinkController) Redirect(ctx *gin.Context) {
	segment := resolver.LastSegment(ctx.Request.URL.EscapedPath())

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
	defer cancel()

	outcome, err := s.linkService.Resolve(reqCtx, segment)
	if err != nil {
		_ = ctx.Error(err)
		ctx.String(http.StatusServiceUnavailable, msgUnavailable)
		return
	}
	if !outcome.Found {
		ctx.Redirect(http.StatusFound, "/")
		return
	}
	ctx.Redirect(http.StatusFound, outcome.URL)
}

// create проверяет URL, сохраняет его и собирает короткую ссылку.
// При ошибке возвращает ненулевой статус и текст для клиента.
func (s *ShortLinkController) create(ctx *gin.Context, rawURL, custom string) (string, int, string) {
	parsedURL, parseErr := validateURL(rawURL)
	if parseErr != nil {
		_ = ctx.Error(parseErr)
		return "", http.StatusBadRequest, msgInvalidURL
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
	defer cancel()

	link, createErr := s.linkService.Create(reqCtx, parsedURL.String())
	if createErr != nil {
		_ = ctx.Error(createErr)
		return "", http.StatusInternalServerError, msgInternal
	}

	return s.getShortLink(ctx.Request, custom, link.Token()), 0, ""
}

// getShortLink собирает {scheme}://{host}/[{custom}/]{token}.
// custom попадает в ссылку как путь: `/` сохраняются, `?`, `#` и пробелы экранируются.
// При переходе custom не учитывается, разрешается только последний сегмент.
func (s *ShortLinkController) getShortLink(r *http.Request, custom, token string) string {
	base := s.baseURL
	if base == nil {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = &url.URL{Scheme: scheme, Host: r.Host}
	}
	custom = strings.Trim(custom, "/")
	if custom == "" {
		return fmt.Sprintf("%s/%s", base, token)
	}
	return fmt.Sprintf("%s/%s/%s", base, (&url.URL{Path: custom}).EscapedPath(), token)
}

// validateURL проверяет, что строка является абсолютным URL со схемой и хостом.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if !parsedURL.IsAbs() {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrInvalidURL, rawURL)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return parsedURL, nil
}
