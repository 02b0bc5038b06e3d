package captcha

// Reason explains why the verification provider could not give an answer.
type Reason string

const (
	ReasonConnection Reason = "connection"  // transport failure, timeout or DNS error
	ReasonBadStatus  Reason = "bad-status"  // provider answered with a non-200 status
	ReasonBadPayload Reason = "bad-payload" // provider body was not the expected JSON object
)

// Result is the outcome of a verification: exactly one of Verified, Rejected or Unavailable.
// The set is closed; callers switch on the concrete type.
//
//	switch res := v.Verify(ctx, token, ip).(type) {
//	case captcha.Verified:
//	case captcha.Rejected:
//	case captcha.Unavailable:
//	    _ = res.Reason
//	}
type Result interface {
	isResult()
	String() string
}

// Verified means the human check passed (or verification is disabled).
type Verified struct{}

// Rejected means the human check failed. It is a client problem: new input is needed.
type Rejected struct {
	// ErrorCodes are the provider's error codes, for logging only.
	ErrorCodes []string
}

// Unavailable means no verdict could be obtained. It is a service problem: retry later.
type Unavailable struct {
	Reason Reason
}

func (Verified) isResult()    {}
func (Rejected) isResult()    {}
func (Unavailable) isResult() {}

func (Verified) String() string      { return "verified" }
func (Rejected) String() string      { return "rejected" }
func (u Unavailable) String() string { return "service-unavailable(" + string(u.Reason) + ")" }
