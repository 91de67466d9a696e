package conveyor_test

import (
	"fmt"

	"github.com/katalvlaran/warehouse/config"
	"github.com/katalvlaran/warehouse/conveyor"
)

// ExampleWarehouse runs two orders through the sample layout.
func ExampleWarehouse() {
	wh, _ := conveyor.New(config.Default(), conveyor.WithIDGenerator(sequentialIDs()))
	_, _ = wh.AddOrder("Drill", "Tools", 2.0)
	_, _ = wh.AddOrder("Ice", "Frozen", 5.0)

	out, _ := wh.Drain()
	for _, d := range out {
		fmt.Println(d.Product, "→", d.Route.Path, d.Route.Distance)
	}
	_, ok, _ := wh.ProcessNext()
	fmt.Println("more:", ok)
	// Output:
	// [ORD-001] Drill (Tools) - 2.00kg → [Gate A1 Shelf] 7
	// [ORD-002] Ice (Frozen) - 5.00kg → [Gate B1 Cold] 7
	// more: false
}
