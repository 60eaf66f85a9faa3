// Copyright 2025 go-libm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides a diagnostic tool to print the floating-point
// features the library's dispatch relies on.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-libm/libm"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("libm reduction path: %s\n", libm.ReductionPath())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Println("No feature detection for this architecture; using the portable path.")
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline, fused multiply-add)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:  %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasFMA:    %v (fused multiply-add, used by the trig reduction)\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE41:  %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:    %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:   %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512: %v\n", cpu.X86.HasAVX512)
}
