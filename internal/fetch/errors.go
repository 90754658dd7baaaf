package fetch

import "errors"

// ErrUpstream wraps every failure to retrieve or decode an upstream payload.
// The pipeline does not retry; callers check errors.Is and abort the run.
var ErrUpstream = errors.New("upstream fetch failed")
