// Package sysfs implements the class-based enumerator "sysfs".
//
// Two devices are discovered under the sysfs root:
//
//	backlight  one target per entry of /sys/class/backlight, plus "auto"
//	leds       one target per entry of /sys/class/leds
//
// Every target reads and writes the entry's brightness file and reads its
// upper bound from max_brightness. The "auto" target aliases the backlight
// entry with the greatest max_brightness; ties keep the first entry in
// directory order.
package sysfs
