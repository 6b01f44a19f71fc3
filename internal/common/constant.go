package common

// AuthorizationHeaderName is the HTTP header used to carry the session token
// on inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme of the Authorization header value.
const BearerPrefix = "Bearer"
