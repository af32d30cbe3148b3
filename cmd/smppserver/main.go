// Command smppserver runs a minimal SMSC that answers binds and
// submit_sm requests and prints each submitted message in uppercase.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/smppcore/smpp"
	"github.com/smppcore/smpp/pdu"
)

func main() {
	app := cli.NewApp()
	app.Name = "smppserver"
	app.Usage = "run a minimal SMSC"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "addr", Value: "localhost:2775", Usage: "address to listen on"},
		cli.StringFlag{Name: "system-id", Value: "smppserver", Usage: "system_id returned in bind_resp"},
		cli.StringFlag{Name: "metrics-addr", Usage: "if set, serve Prometheus metrics on this address while running"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	systemID := c.String("system-id")
	var metrics smpp.MetricsCollector = smpp.NopMetrics()
	if addr := c.String("metrics-addr"); addr != "" {
		reg := prometheus.NewRegistry()
		metrics = smpp.NewPrometheusMetrics(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go http.ListenAndServe(addr, mux)
	}

	var msgSeq int64
	sessConf := smpp.SessionConf{
		Metrics: metrics,
		Handler: smpp.HandlerFunc(func(ctx *smpp.Context) {
			switch ctx.CommandID() {
			case pdu.BindTransceiverID:
				btrx, err := ctx.BindTRx()
				if err != nil {
					return
				}
				ctx.Respond(btrx.Response(systemID), pdu.StatusOK)
			case pdu.BindTransmitterID:
				btx, err := ctx.BindTx()
				if err != nil {
					return
				}
				ctx.Respond(btx.Response(systemID), pdu.StatusOK)
			case pdu.BindReceiverID:
				brx, err := ctx.BindRx()
				if err != nil {
					return
				}
				ctx.Respond(brx.Response(systemID), pdu.StatusOK)
			case pdu.SubmitSmID:
				sm, err := ctx.SubmitSm()
				if err != nil {
					return
				}
				id := atomic.AddInt64(&msgSeq, 1)
				resp := sm.Response(fmt.Sprintf("msg_%d", id))
				ctx.Respond(resp, pdu.StatusOK)
				fmt.Printf("received: %s\n", strings.ToUpper(sm.ShortMessage))
			case pdu.EnquireLinkID:
				ctx.Respond(&pdu.EnquireLinkResp{}, pdu.StatusOK)
			case pdu.UnbindID:
				unb, err := ctx.Unbind()
				if err != nil {
					return
				}
				ctx.Respond(unb.Response(), pdu.StatusOK)
				ctx.CloseSession()
			}
		}),
	}
	srv := smpp.NewServer(c.String("addr"), sessConf)
	fmt.Printf("%q listening on %q\n", systemID, c.String("addr"))
	if err := srv.ListenAndServe(); err != nil {
		return cli.NewExitError(fmt.Sprintf("serve failed: %s", err), 1)
	}
	return nil
}
