package main

import (
	"fmt"
	"net"
	"strconv"
)

const defaultPort = 8080

// lanAddress returns the first IPv4 address of an interface that is up and
// not a loopback, the one other devices on the network can reach.
func lanAddress() (net.IP, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagUp == 0 || ifi.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := ifi.Addrs()
		for _, a := range addrs {
			var ip net.IP
			switch v := a.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			default:
				continue
			}
			if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() {
				return ip4, nil
			}
		}
	}
	return nil, fmt.Errorf("no network interface with an IPv4 address")
}

// publicURL returns the address a browser should open for a server
// listening on addr. An unspecified host is replaced by the LAN address.
func publicURL(addr string) (string, error) {
	host, port, err := splitHostPort(addr, defaultPort)
	if err != nil {
		return "", err
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
		if lan, err := lanAddress(); err == nil {
			host = lan.String()
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/", nil
}

// splitHostPort splits an address into host and port, using defaultPort if no port is specified.
func splitHostPort(addr string, defaultPort int) (string, string, error) {
	ipaddr, port, err := net.SplitHostPort(addr)
	if err != nil {
		addr = addr + ":" + strconv.Itoa(defaultPort)
		ipaddr, port, err = net.SplitHostPort(addr)
		if err != nil {
			return "", "", err
		}
	}
	return ipaddr, port, nil
}
