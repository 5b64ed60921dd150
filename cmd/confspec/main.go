// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

var osExit = os.Exit

func main() {
	rootCmd, err := newRootCmd()
	if err != nil {
		log.Error(err.Error())
		osExit(1)
		return
	}
	if err := rootCmd.Execute(); err != nil {
		osExit(1)
	}
}
