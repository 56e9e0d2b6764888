// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package uphyd brings up the UPHY, retrying until it succeeds, then
// serves its status over RPC and publishes changes to redis.
package uphyd

import (
	"context"
	"net/rpc"
	"strconv"
	"sync"
	"time"

	"github.com/platinasystems/atsock"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
	"github.com/platinasystems/redis/publisher"
	"github.com/platinasystems/uphy/goes"
	"github.com/platinasystems/uphy/internal/platform"
	"github.com/platinasystems/uphy/uphy"
)

const Name = "uphyd"

// Prefix of every published key.
const Prefix = "uphy."

// DefaultPoll is the status publication period.
const DefaultPoll = 10 * time.Second

const usage = "[-sim] [-no-redis] [-plu ADDR] [-clk ADDR] [-fuse ADDR]" +
	" [-retry N] [-interval DURATION] [-poll DURATION]"

var options = []string{"-sim", "-no-redis", "-plu", "-clk", "-fuse",
	"-retry", "-interval", "-poll"}

type Publisher interface {
	Print(args ...interface{}) (int, error)
	Close() error
}

// Redis connection, replaced by tests.
var (
	redisReady   = redis.IsReady
	newPublisher = func() (Publisher, error) { return publisher.New() }
)

// Info is registered as the RPC service of the daemon.
type Info struct {
	mutex sync.Mutex
	dev   *uphy.Uphy
	pub   Publisher
	last  map[string]string
}

// New returns the service for dev; with a nil pub, changes are logged
// rather than published.
func New(dev *uphy.Uphy, pub Publisher) *Info {
	return &Info{
		dev:  dev,
		pub:  pub,
		last: make(map[string]string),
	}
}

// Ready replies whether both lanes are up.
func (i *Info) Ready(who string, reply *bool) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	*reply = i.dev.IsReady()
	return nil
}

// Status replies with a snapshot of the PLL and lanes.
func (i *Info) Status(who string, reply *uphy.Status) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	log.Print("daemon", "debug", who, ": status")
	*reply = i.dev.Status()
	return nil
}

func (i *Info) configure() error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.dev.Configure()
}

// update publishes the status fields that changed since the last update.
func (i *Info) update() {
	i.mutex.Lock()
	s := i.dev.Status()
	i.mutex.Unlock()
	s.Each(i.publish)
}

func (i *Info) publish(k, v string) {
	if i.last[k] == v {
		return
	}
	i.last[k] = v
	if i.pub == nil {
		log.Print("daemon", "info", Prefix, k, ": ", v)
		return
	}
	if _, err := i.pub.Print(Prefix, k, ": ", v); err != nil {
		log.Print("daemon", "err", Prefix, k, ": ", err)
	}
}

func Main(ctx context.Context, args ...string) error {
	if goes.Help(ctx, usage) {
		return nil
	}
	if goes.Complete(ctx, options, args) {
		return nil
	}
	flag, args := flags.New(args, "-sim", "-no-redis")
	parm, args := parms.New(args, "-plu", "-clk", "-fuse",
		"-retry", "-interval", "-poll")
	if len(args) > 0 {
		return goes.ErrorfWith(ctx, "%v: unexpected", args)
	}
	c, err := platform.Parse(parm)
	if err != nil {
		return goes.ErrorfWith(ctx, "%v", err)
	}
	if len(parm.ByName["-retry"]) == 0 {
		c.Retry = -1
	}
	c.Sim = flag.ByName["-sim"]
	poll := DefaultPoll
	if s := parm.ByName["-poll"]; len(s) > 0 {
		if poll, err = time.ParseDuration(s); err != nil || poll <= 0 {
			return goes.ErrorfWith(ctx, "-poll: %q invalid", s)
		}
	}

	d, err := c.Open()
	if err != nil {
		return goes.ErrorfWith(ctx, "%v", err)
	}
	defer d.Close()

	var pub Publisher
	if !flag.ByName["-no-redis"] {
		if err = redisReady(); err != nil {
			return goes.ErrorfWith(ctx, "redis: %w", err)
		}
		p, err := newPublisher()
		if err != nil {
			return goes.ErrorfWith(ctx, "publisher: %w", err)
		}
		defer p.Close()
		pub = p
	}
	info := New(d.Uphy, pub)

	srv, err := atsock.NewRpcServer(Name)
	if err != nil {
		return goes.ErrorfWith(ctx, "rpc server: %w", err)
	}
	defer srv.Close()
	if err = rpc.Register(info); err != nil {
		return goes.ErrorfWith(ctx, "rpc register: %w", err)
	}

	log.Print("daemon", "info", "retry ", retries(c.Retry),
		" from ", c.Interval)
	done := make(chan error, 1)
	go func() {
		done <- platform.Retry(ctx, c.Retry, c.Interval, info.configure)
	}()
	t := time.NewTicker(poll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if done != nil {
				<-done
			}
			return nil
		case err := <-done:
			done = nil
			if err != nil {
				log.Print("daemon", "err", err)
				info.publish("error", err.Error())
			}
			info.update()
		case <-t.C:
			info.update()
		}
	}
}

func retries(n int) string {
	if n < 0 {
		return "forever"
	}
	return strconv.Itoa(n)
}
