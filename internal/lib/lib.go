// Package lib groups helpers that sit outside the request layers: the
// background job queue (job), the Resend email client (email) and small
// utilities (utils).
package lib
