package webclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/raysh454/fhscan/internal/logging"
)

// ChromedpClient renders pages in a shared headless browser. Each Do opens
// its own tab. Only GET is supported.
type ChromedpClient struct {
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	timeout       time.Duration
	idleAfter     time.Duration
	logger        logging.Logger
}

// NewChromedpClient starts the browser. It fails when no Chrome binary is
// available.
func NewChromedpClient(cfg Config, logger logging.Logger) (*ChromedpClient, error) {
	cfg = cfg.withDefaults()
	l := logging.OrNop(logger).With(logging.Field{Key: "backend", Value: "chromedp"})

	opts := append([]chromedp.ExecAllocatorOption(nil), chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	if cfg.Headful {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	l.Info("created chromedp webclient",
		logging.Field{Key: "timeout", Value: cfg.Timeout.String()},
		logging.Field{Key: "idle_after", Value: cfg.IdleAfter.String()})

	return &ChromedpClient{
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		timeout:       cfg.Timeout,
		idleAfter:     cfg.IdleAfter,
		logger:        l,
	}, nil
}

// waitNetworkIdle signals once no request has been in flight for idleAfter.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) <-chan struct{} {
	idleChan := make(chan struct{})
	var (
		activeReqs int32
		timer      *time.Timer
		timerMutex sync.Mutex
		once       sync.Once
	)

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() { close(idleChan) })
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})
	startTimer()

	return idleChan
}

func (c *ChromedpClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if m := strings.ToUpper(req.Method); m != "" && m != http.MethodGet {
		return nil, fmt.Errorf("chromedp backend supports only GET, got %s", m)
	}

	tabCtx, cancelTab := chromedp.NewContext(c.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, c.timeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var (
		docMu   sync.Mutex
		status  int
		headers = http.Header{}
	)
	chromedp.ListenTarget(tabCtx, func(ev any) {
		e, ok := ev.(*network.EventResponseReceived)
		if !ok || e.Type != network.ResourceTypeDocument {
			return
		}
		docMu.Lock()
		defer docMu.Unlock()
		if status != 0 {
			return
		}
		status = int(e.Response.Status)
		for k, v := range e.Response.Headers {
			headers.Set(k, fmt.Sprint(v))
		}
	})
	idle := waitNetworkIdle(tabCtx, c.idleAfter)

	c.logger.Debug("rendering page", logging.Field{Key: "url", Value: req.URL})
	if err := chromedp.Run(tabCtx, network.Enable(), chromedp.Navigate(req.URL)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", req.URL, err)
	}

	select {
	case <-idle:
	case <-tabCtx.Done():
		return nil, fmt.Errorf("render %s: %w", req.URL, tabCtx.Err())
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("read rendered html: %w", err)
	}

	docMu.Lock()
	code := status
	docMu.Unlock()
	if code == 0 {
		code = http.StatusOK
	}
	return &Response{
		Request:    req,
		Headers:    headers,
		Body:       []byte(html),
		StatusCode: code,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *ChromedpClient) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url})
}

func (c *ChromedpClient) Close() error {
	c.cancelBrowser()
	c.cancelAlloc()
	c.logger.Debug("closed chromedp webclient")
	return nil
}
