package declare_test

import (
	"fmt"

	"github.com/robloxapi/rbxdom"
	. "github.com/robloxapi/rbxdom/declare"
)

func Example() {
	dom := rbxdom.NewWeakDom()
	Root{
		Instance("Part", Ref("plate"),
			Property("Name", rbxdom.TypeString, "BasePlate"),
			Property("CanCollide", rbxdom.TypeBool, true),
			Property("Position", rbxdom.TypeVector3, 0, 10, 0),
			Property("Size", rbxdom.TypeVector3, 2, 1.2, 4),
			Instance("CFrameValue",
				Property("Name", rbxdom.TypeString, "Value"),
				Property("Value", rbxdom.TypeCFrame, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1),
			),
			Instance("ObjectValue",
				Property("Name", rbxdom.TypeString, "Value"),
				Property("Value", rbxdom.TypeRef, "plate"),
			),
		),
	}.Declare(dom)
	fmt.Println(len(dom.Roots()))
	// Output: 1
}
