package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// outbound API requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the access token in the authorization header.
const BearerPrefix = "Bearer "
