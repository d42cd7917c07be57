package seva_test

import (
	"fmt"

	"github.com/nagrikmitra/mitra/refdata"
	"github.com/nagrikmitra/mitra/seva"
)

type staticSource []refdata.ServiceRecord

func (s staticSource) Services() ([]refdata.ServiceRecord, error) {
	return s, nil
}

func ExampleResolver_Resolve() {
	source := staticSource{{
		Name:         "Passport",
		Procedure:    []string{"Fill form", "Submit docs"},
		OfficialLink: "https://x",
	}}

	resolver := seva.New(source, nil)
	fmt.Println(resolver.Resolve("passport"))
	// Output:
	// 📜 *Guide for Passport*
	//
	// 📝 *Procedure:*
	// 1. Fill form
	// 2. Submit docs
	//
	// 🔗 *Official Link:* https://x
	//
	// 🔄 *Need more help?* Ask me about any step!
}
