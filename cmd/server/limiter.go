package main

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// connectionLimiter caps the number of concurrent sessions per remote IP.
type connectionLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
}

func newConnectionLimiter(limit int) *connectionLimiter {
	return &connectionLimiter{counts: make(map[string]int), limit: limit}
}

func (l *connectionLimiter) acquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[ip] >= l.limit {
		return l.counts[ip], false
	}
	l.counts[ip]++
	return l.counts[ip], true
}

func (l *connectionLimiter) release(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
		return 0
	}
	return l.counts[ip]
}

func remoteIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

func (l *connectionLimiter) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := remoteIP(s)

		count, ok := l.acquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", l.limit)
			fmt.Fprintf(s, "Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, l.limit)
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.limit)
		defer func() {
			log.Info("Connection closed", "ip", ip, "count_after", l.release(ip))
		}()
		next(s)
	}
}
