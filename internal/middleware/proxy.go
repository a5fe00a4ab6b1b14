package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nckslvrmn/wpenv/internal/loader"
)

const (
	HTTPSKey   = "https"
	SiteURLKey = "site_url"
)

type echoRequest struct {
	c echo.Context
}

func (r echoRequest) Header(name string) string {
	return r.c.Request().Header.Get(name)
}

func (r echoRequest) MarkHTTPS() {
	r.c.Set(HTTPSKey, true)
}

// Proxy applies the loader's per-request behaviour: requests forwarded over
// HTTPS are marked and the resolved site URL is stored on the context.
func Proxy(l *loader.Loader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := echoRequest{c: c}
			c.Set(HTTPSKey, c.Request().TLS != nil)
			if l.ApplyRequest(req) {
				c.Logger().Debugf("request %s forwarded over https", c.Request().URL.Path)
			}
			c.Set(SiteURLKey, l.SiteURL(req))
			return next(c)
		}
	}
}

func IsHTTPS(c echo.Context) bool {
	https, _ := c.Get(HTTPSKey).(bool)
	return https
}

func SiteURL(c echo.Context) string {
	url, _ := c.Get(SiteURLKey).(string)
	return url
}
