// Copyright 2026 CardinalHQ, Inc
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

package dist

import (
	"testing"
)

var benchSink float64

func benchFamilies(b *testing.B) []struct {
	name string
	d    Distribution
} {
	b.Helper()
	any, err := NewAny(0, 1)
	if err != nil {
		b.Fatalf("NewAny: %v", err)
	}
	anyTailed, err := NewAnyTailed(0, 1, 0.2)
	if err != nil {
		b.Fatalf("NewAnyTailed: %v", err)
	}
	central, err := NewCentral(0, 1)
	if err != nil {
		b.Fatalf("NewCentral: %v", err)
	}
	centralTailed, err := NewCentralTailed(0, 1, 0.2)
	if err != nil {
		b.Fatalf("NewCentralTailed: %v", err)
	}
	return []struct {
		name string
		d    Distribution
	}{
		{"any", any},
		{"anyTailed", anyTailed},
		{"central", central},
		{"centralTailed", centralTailed},
	}
}

func BenchmarkSample(b *testing.B) {
	for _, f := range benchFamilies(b) {
		b.Run(f.name, func(b *testing.B) {
			src := NewSource(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = f.d.Sample(src)
			}
		})
	}
}

func BenchmarkDensity(b *testing.B) {
	for _, f := range benchFamilies(b) {
		b.Run(f.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSink = f.d.Density(0.75)
			}
		})
	}
}
