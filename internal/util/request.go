package util

import (
	"filelink/internal/model"
	"net"
	"net/http"
	"strings"
)

// ClientIP : последний адрес из X-Forwarded-For, иначе адрес соединения, иначе пустая строка
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if last := strings.TrimSpace(parts[len(parts)-1]); last != "" {
			return last
		}
	}

	if r.RemoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RequestMetaFromRequest : поля для журнала скачиваний
func RequestMetaFromRequest(r *http.Request) model.RequestMeta {
	return model.RequestMeta{
		Method:      r.Method,
		ClientIP:    ClientIP(r),
		UserAgent:   r.Header.Get("User-Agent"),
		RangeHeader: r.Header.Get("Range"),
	}
}
