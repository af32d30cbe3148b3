// Command smppclient binds to an SMSC and submits a single short message.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"github.com/smppcore/smpp"
	"github.com/smppcore/smpp/pdu"
)

func main() {
	app := cli.NewApp()
	app.Name = "smppclient"
	app.Usage = "bind to an SMSC and submit a short message"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "addr", Value: "localhost:2775", Usage: "SMSC address to bind to"},
		cli.StringFlag{Name: "system-id", Value: "smppclient", Usage: "system_id presented at bind"},
		cli.StringFlag{Name: "password", Usage: "password presented at bind"},
		cli.StringFlag{Name: "src-addr", Value: "222222", Usage: "source address of the submitted message"},
		cli.StringFlag{Name: "dst-addr", Value: "111111", Usage: "destination address of the submitted message"},
		cli.StringFlag{Name: "msg", Value: "example", Usage: "short message text"},
		cli.StringFlag{Name: "metrics-addr", Usage: "if set, serve Prometheus metrics on this address while running"},
		cli.Float64Flag{Name: "rate-limit", Usage: "if set, cap outbound PDUs per second to avoid ESME_RTHROTTLED"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	sc := smpp.SessionConf{}
	if addr := c.String("metrics-addr"); addr != "" {
		reg := prometheus.NewRegistry()
		sc.Metrics = smpp.NewPrometheusMetrics(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go http.ListenAndServe(addr, mux)
	}
	if rl := c.Float64("rate-limit"); rl > 0 {
		sc.RateLimiter = rate.NewLimiter(rate.Limit(rl), 1)
	}

	bc := smpp.BindConf{
		Addr:     c.String("addr"),
		SystemID: c.String("system-id"),
		Password: c.String("password"),
	}
	sess, err := smpp.BindTRx(sc, bc)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("bind failed: %s", err), 1)
	}
	defer smpp.Unbind(context.Background(), sess)

	sm := &pdu.SubmitSm{
		SourceAddr:      c.String("src-addr"),
		DestinationAddr: c.String("dst-addr"),
		ShortMessage:    c.String("msg"),
	}
	resp, err := sess.Send(context.Background(), sm)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("submit_sm failed: %s", err), 1)
	}
	fmt.Printf("submitted, response: %s %+v\n", resp.CommandID(), resp)
	return nil
}
