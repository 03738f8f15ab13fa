// Package extract holds the boundary to the external extraction
// collaborators: the AI model that pulls structured records out of statement
// documents, and the OCR helper for pay stubs. Extraction accuracy is owned
// by the collaborators; the core only normalizes whatever comes back.
package extract

import (
	"context"

	"mbaxter/ledgerize/internal/models"
)

// TransactionExtractor extracts raw transaction records from document bytes.
type TransactionExtractor interface {
	ExtractTransactions(ctx context.Context, data []byte, mimeType, targetMonth string) ([]models.RawTransaction, error)
}

// PaycheckExtractor extracts permissive paycheck records from document bytes.
// The returned maps use the collaborator's own field naming; normalization
// happens in the paystub package.
type PaycheckExtractor interface {
	ExtractPaycheck(ctx context.Context, data []byte, mimeType string) ([]map[string]interface{}, error)
}
