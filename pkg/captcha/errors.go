package captcha

import "errors"

// ErrNotJSONObject is logged when the provider body is not a JSON object.
var ErrNotJSONObject = errors.New("captcha: response is not a JSON object")

// ErrMissingSecret is returned by Config.Validate when verification is
// enabled without a secret key.
var ErrMissingSecret = errors.New("captcha: RECAPTCHA_SECRET_KEY is required when CAPTCHA_ENABLED is true")
