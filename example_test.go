package httperr_test

import (
	"fmt"

	"github.com/indigo-web/httperr"
	"github.com/indigo-web/httperr/status"
)

func ExampleNew() {
	e, _ := httperr.New(status.NotFound, "Not Found", "no such user")
	fmt.Println(e)
	// Output: 404 Not Found no such user
}

func ExampleError_Response() {
	resp := httperr.InternalServerError.With("boom").Response()

	fmt.Println(resp.Code)
	for _, h := range resp.Headers {
		fmt.Println(h.Key + ": " + h.Value)
	}
	fmt.Println(string(resp.Body[0]))
	// Output:
	// 500
	// Content-Type: text/plain
	// Content-Length: 30
	// 500 Internal Server Error boom
}
