// Package tasks loads task files and runs their edits in order.
//
// A task file lists edits under a "tasks" key, in TOML:
//
//	[[tasks]]
//	name = "disable root login"
//	path = "/etc/ssh/sshd_config"
//	regexp = "^#?PermitRootLogin"
//	line = "PermitRootLogin no"
//
// or in YAML:
//
//	tasks:
//	  - path: /etc/hosts
//	    regexp: 'example\.test$'
//	    state: absent
//
// The Runner stops at the first failing task. Results of the tasks that ran
// before it are still returned.
package tasks
