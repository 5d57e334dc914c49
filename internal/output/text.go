// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
)

// WriteText prints the matrix as TSV, one line per position.
func WriteText(w io.Writer, m *barcode.BarcodeMatrix, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		bw.WriteString(TSVPositionColumn)
		for _, l := range m.Lineages {
			bw.WriteByte('\t')
			bw.WriteString(l)
		}
		bw.WriteByte('\n')
	}
	for i, p := range m.Positions {
		bw.WriteString(strconv.Itoa(p))
		bw.WriteByte('\t')
		bw.WriteString(strings.Join(m.Cells[i], "\t"))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
