// Command decimal128 is a small demo driver exercising Parse, String, the
// BSON element codec, and locale-aware display, in the spirit of the
// teacher module's own root demo program.
package main

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"golang.org/x/text/language"

	"github.com/go-decimal128/decimal128/bsoncodec"
	"github.com/go-decimal128/decimal128/decimal128"
	"github.com/go-decimal128/decimal128/humanize"
)

func main() {
	fmt.Println("Value:", unsafe.Sizeof(decimal128.Value{}), "bytes")
	fmt.Println(demo())
}

func demo() string {
	format := "%-16s\t%-20s\t%s\n"
	sep := "-------------------------------------------------"

	var out string
	printf := func(f string, args ...any) {
		out += fmt.Sprintf(f, args...)
	}

	literals := []string{"0", "-0", "123.456", "1.20E+3", "9.999999999999999999999999999999999E+6144"}
	for _, lit := range literals {
		v, err := decimal128.Parse(lit)
		if err != nil {
			printf(format, lit, "<error>", err)
			continue
		}
		b := bsoncodec.EncodeElement(v)
		printf(format, lit, v.String(), hex.EncodeToString(b[:]))
	}
	out += sep + "\n"

	price, _ := decimal128.Parse("12345.67")
	printf("%-16s\t%-20s\t%s\n", "humanize(en)", humanize.Localize(price, language.English), "")
	printf("%-16s\t%-20s\t%s\n", "humanize(de)", humanize.Localize(price, language.German), "")
	out += sep + "\n"

	// Form-B is a non-canonical combination-field encoding Encode never
	// produces, but String/bsoncodec must still handle it correctly.
	formB := decimal128.New(0x6C10000000000000, 0x0)
	b := bsoncodec.EncodeElement(formB)
	printf(format, "<Form B>", formB.String(), hex.EncodeToString(b[:]))
	out += sep + "\n"

	special := []decimal128.Value{decimal128.NaN, decimal128.PositiveInfinity, decimal128.NegativeInfinity}
	for _, v := range special {
		printf("%-16s\tfinite=%-5v\tinfinite=%v\n", v.String(), v.IsFinite(), v.IsInfinite())
	}

	return out
}
