package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideParam is the query or form parameter HTML forms use to
// request PUT or DELETE.
const MethodOverrideParam = "_method"

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites a POST request to the method named by the _method
// query or urlencoded body parameter. It must wrap the router so routing
// sees the rewritten method.
func MethodOverride() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				method := r.URL.Query().Get(MethodOverrideParam)
				if method == "" && isURLEncoded(r) {
					// ParseForm caches the body in r.PostForm for the handler.
					if err := r.ParseForm(); err == nil {
						method = r.PostForm.Get(MethodOverrideParam)
					}
				}
				method = strings.ToUpper(strings.TrimSpace(method))
				if overridableMethods[method] {
					r.Method = method
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isURLEncoded(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(ct), "application/x-www-form-urlencoded")
}
