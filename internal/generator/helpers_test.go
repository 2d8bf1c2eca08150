package generator

import "fmt"

func itoa(n int) string { return fmt.Sprint(n) }

func pad4(n int) string { return fmt.Sprintf("%04d", n) }
