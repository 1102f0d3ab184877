package search_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if !req.Modality.IsValid() {
		return fmt.Errorf("%w: unknown modality %q", ErrInvalidInput, req.Modality)
	}

	return nil
}
