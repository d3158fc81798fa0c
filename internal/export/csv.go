package export

import (
	"bytes"
	"encoding/csv"

	"github.com/leadmapr/leadmapr/internal/entity"
)

func generateCSV(leads []entity.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, lead := range leads {
		if err := w.Write(leadRow(lead)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
