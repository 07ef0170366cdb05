package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Doc wraps a document so %s in Logf renders it in compact form.
type Doc struct{ *ir.Document }

func (y Doc) String() string {
	if y.Document == nil {
		return "<nil>"
	}
	return compact.Serialize(y.Document)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Document:
			args[i] = compact.Serialize(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
