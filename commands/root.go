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

package commands

import "github.com/spf13/cobra"

var root = &cobra.Command{
	Use:     "warble",
	Short:   "Warble is a shaped-randomness generator for telemetry pipelines",
	Long:    `Warble draws values from configurable distributions, checks that the draws really follow them, and can stream the results to an OpenTelemetry collector.`,
	Version: version,
}

func Execute() error {
	root.AddCommand(SampleCmd)
	root.AddCommand(VerifyCmd)
	root.AddCommand(EmitCmd)

	return root.Execute()
}
