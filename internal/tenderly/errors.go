package tenderly

import "fmt"

// RemoteServiceError is returned when the service rejected the simulation
// outright and answered with an error object instead of a transaction.
type RemoteServiceError struct {
	Slug    string
	Message string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("simulation service error [%s]: %s", e.Slug, e.Message)
}

// InvalidResponseError is returned when the service answered with neither a
// transaction nor an error object.
type InvalidResponseError struct {
	Raw []byte
}

func (e *InvalidResponseError) Error() string {
	return "invalid simulation response"
}

// ExecutionRevertedError is returned when the transaction simulated but
// reverted during execution.
type ExecutionRevertedError struct {
	Address string
	Message string
}

func (e *ExecutionRevertedError) Error() string {
	return fmt.Sprintf("execution reverted in %s: %s", e.Address, e.Message)
}

// Classify inspects a simulation response and returns the matching typed
// error, or nil when the simulation succeeded. These errors are rendered into
// report panels by the caller, never surfaced as raw failures.
func Classify(resp *Response) error {
	if resp.Transaction == nil {
		if resp.Error != nil {
			return &RemoteServiceError{
				Slug:    resp.Error.Slug,
				Message: resp.Error.Message,
			}
		}
		return &InvalidResponseError{
			Raw: resp.Raw,
		}
	}

	if resp.Transaction.ErrorInfo != nil {
		return &ExecutionRevertedError{
			Address: resp.Transaction.ErrorInfo.Address,
			Message: resp.Transaction.ErrorInfo.ErrorMessage,
		}
	}

	return nil
}
