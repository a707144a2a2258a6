package shortcode_test

import (
	"fmt"

	"github.com/fsdevblog/shortlink/internal/shortcode"
)

func ExampleEncode() {
	fmt.Println(shortcode.Encode(1))
	fmt.Println(shortcode.Encode(-1))

	// Output:
	// AQAAAA
	// _____w
}

func ExampleDecode() {
	id, err := shortcode.Decode("AQAAAA")
	fmt.Println(id, err)

	_, err = shortcode.Decode("!!!")
	fmt.Println(err != nil)

	// Output:
	// 1 <nil>
	// true
}
