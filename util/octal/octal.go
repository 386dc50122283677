/*
 * D17B/D37C - Convert values to octal strings.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package octal

import "strings"

var octMap = "01234567"

// FormatWord appends a 24-bit word as 8 octal digits.
func FormatWord(str *strings.Builder, word []uint32) {
	for _, full := range word {
		shift := 21
		for range 8 {
			str.WriteByte(octMap[(full>>shift)&0x7])
			shift -= 3
		}
		str.WriteByte(' ')
	}
}

// FormatChannel appends a 6-bit channel as 2 octal digits.
func FormatChannel(str *strings.Builder, ch uint8) {
	str.WriteByte(octMap[(ch>>3)&0x7])
	str.WriteByte(octMap[ch&0x7])
}

// FormatSector appends a 7-bit sector as 3 octal digits.
func FormatSector(str *strings.Builder, sec uint8) {
	str.WriteByte(octMap[(sec>>6)&0x1])
	str.WriteByte(octMap[(sec>>3)&0x7])
	str.WriteByte(octMap[sec&0x7])
}

// FormatDigit appends a single octal digit of the low 3 bits of data.
func FormatDigit(str *strings.Builder, data byte) {
	str.WriteByte(octMap[data&0x7])
}

// Word renders a 24-bit word as an 8-digit octal string.
func Word(w uint32) string {
	var b strings.Builder
	FormatWord(&b, []uint32{w})
	return strings.TrimRight(b.String(), " ")
}

// Channel renders a 6-bit channel as a 2-digit octal string.
func Channel(ch uint8) string {
	var b strings.Builder
	FormatChannel(&b, ch)
	return b.String()
}

// Sector renders a 7-bit sector as a 3-digit octal string.
func Sector(sec uint8) string {
	var b strings.Builder
	FormatSector(&b, sec)
	return b.String()
}
