// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build !debug

package ydd

// dlogf is a no-op outside of debug builds; see debug_on.go. Kept as a plain
// function rather than a package variable so the compiler can inline it away
// entirely, matching the _DEBUG-gated calls in the rudd library this package
// is adapted from.
func dlogf(format string, args ...interface{}) {}
