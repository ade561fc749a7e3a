package common

// AuthCookieName is the cookie that carries the session token between the
// browser (or CLI client) and the API.
const AuthCookieName = "auth_token"

// AuthHeaderName is the fallback header for clients that cannot use cookies.
// The value is expected in "Bearer <token>" form.
const AuthHeaderName = "Authorization"
