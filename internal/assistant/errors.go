package assistant

import "errors"

// ErrProviderFailed wraps every failure to obtain a reply from the provider.
var ErrProviderFailed = errors.New("assistant: provider failed")
