// Package procedures provides procedure code search helpers and a small
// net/http handler that returns JSON options for form selects.
//
// The default handler responds to GET and HEAD requests and supports query
// and limit parameters to filter results. The backing data is the embedded
// prior-authorization procedure catalog unless a custom set is supplied.
package procedures
