package solarsys_test

import (
	"fmt"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

func ExampleDecodeBody() {
	b, err := solarsys.DecodeBody([]byte(`{"name":"Mars","id":"mars","mass":{"massValue":6.42,"massExponent":23}}`))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(b.Name, b.ID)
	fmt.Println("Planet:", b.Planet())
	fmt.Println("Mass:", b.Mass)
	// Output:
	// Mars mars
	// Planet: false
	// Mass: 6.42e23
}

func ExampleDecodeList() {
	bodies, err := solarsys.DecodeList([]byte(`{"bodies":[{"name":"Moon","id":"lune","isPlanet":false},{"name":"Mars","id":"mars","isPlanet":true}]}`))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, b := range bodies {
		fmt.Printf("%s (%s) planet=%v\n", b.Name, b.ID, b.Planet())
	}
	// Output:
	// Moon (lune) planet=false
	// Mars (mars) planet=true
}

func ExampleClient_BuildURL() {
	c := solarsys.NewClient()
	fmt.Println(c.BuildURL(""))
	fmt.Println(c.BuildURL("jupiter"))
	// Output:
	// https://api.le-systeme-solaire.net/rest/bodies/
	// https://api.le-systeme-solaire.net/rest/bodies/jupiter
}
