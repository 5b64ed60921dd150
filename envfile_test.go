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

package confspec

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("environment overlay file names", func() {

	DescribeTable("inserting the environment name",
		func(path, env, expected string) {
			Expect(EnvFileName(path, env)).To(Equal(expected))
		},
		Entry(nil, "/foo/bar.yml", "prod", "bar.prod.yml"),
		Entry(nil, "/foo/bar.baz.yml", "prod", "bar.prod.baz.yml"),
		Entry(nil, "/foo/.baz", "prod", ".baz.prod"),
		Entry(nil, "/foo/.bar.yml", "prod", ".bar.prod.yml"),
		Entry(nil, "bar", "dev", "bar.dev"),
		Entry(nil, "foo/bar.toml", "dev", "bar.dev.toml"),
	)

	DescribeTable("determining formats from suffixes",
		func(path, expected string) {
			Expect(FormatOf(path)).To(Equal(expected))
		},
		Entry(nil, "/foo/bar.yml", "yml"),
		Entry(nil, "/foo/bar.prod.YAML", "yaml"),
		Entry(nil, "config.json", "json"),
		Entry(nil, "/foo/.baz", ""),
		Entry(nil, "/foo/.baz.toml", "toml"),
		Entry(nil, "/foo/bar", ""),
	)

})
