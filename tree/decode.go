package tree

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode converts n to its Go form and decodes it into out, which must
// be a pointer. Struct fields are matched by `mdict` tags, falling back
// to case-insensitive field names.
func Decode(n *Node, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mdict",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(ToGo(n))
}
