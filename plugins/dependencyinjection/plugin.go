package dependencyinjection

import (
	"go.uber.org/dig"
)

var (
	// Container is a dependency injection container.
	Container *dig.Container
)

func init() {
	Container = dig.New()
}
