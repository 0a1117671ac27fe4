package interfaces

import "context"

// IFormForwarder abstracts the generic form-submission collaborator
// (e.g. Web3Forms) behind the public contact form.
type IFormForwarder interface {
	Forward(ctx context.Context, fields map[string]string) error
}
