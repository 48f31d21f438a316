package service

import (
	"fmt"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func f2(v float64) string { // для красивого вывода
	return fmt.Sprintf("%.2f", v)
}
