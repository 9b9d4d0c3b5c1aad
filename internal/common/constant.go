package common

// AccessTokenHeaderName is the HTTP header used to carry the device token on
// outbound requests to the collaboration store.
const AccessTokenHeaderName = "Authorization"
