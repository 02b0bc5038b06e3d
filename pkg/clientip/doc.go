// Package clientip resolves the client IP address of HTTP requests.
//
// Only explicitly trusted proxy headers are consulted:
//
//	res := clientip.New(clientip.HeaderCFConnectingIP, clientip.HeaderXForwardedFor)
//	r.Use(res.Middleware)
//
//	ip := clientip.FromContext(r.Context())
//
// Deployments behind no proxy should use clientip.New() so a client cannot
// choose its own address by sending a header.
package clientip
