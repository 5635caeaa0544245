package main

import (
	"fmt"

	"github.com/joshuapare/safealloc/registry"
)

func hexAddr(a registry.Address) string {
	return fmt.Sprintf("%#x", uintptr(a))
}
