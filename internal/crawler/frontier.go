package crawler

import "sync"

// Candidate is a discovered link proposed to the frontier.
type Candidate struct {
	URL            string
	Depth          int
	Referrer       string
	TargetLanguage string
}

// Frontier owns the set of discovered-but-not-yet-fetched URLs and the
// decision chain that admits candidates: structural eligibility, depth,
// dedup, and a quota short-circuit, evaluated in that fixed order.
//
// It maintains two FIFO bands; candidates whose host matches a language's
// preferred domains are scheduled ahead of the rest.
//
// Next blocks until a request is available and tracks in-flight work so a
// run terminates exactly when the queue drains and nothing is being
// processed.
type Frontier struct {
	mu   sync.Mutex
	cond *sync.Cond

	filter     *LinkFilter
	quota      *QuotaTracker
	depthLimit int

	seen      map[string]struct{}
	preferred []FetchRequest
	normal    []FetchRequest
	inflight  int
	closed    bool
}

// NewFrontier creates an empty frontier.
func NewFrontier(filter *LinkFilter, quota *QuotaTracker, depthLimit int) *Frontier {
	f := &Frontier{
		filter:     filter,
		quota:      quota,
		depthLimit: depthLimit,
		seen:       make(map[string]struct{}),
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Enqueue runs the admission checks and, if the candidate survives, adds a
// fetch request to the queue. It reports the rejection reason otherwise.
// The duplicate check and the seen-set insertion happen atomically under
// the frontier lock.
func (f *Frontier) Enqueue(c Candidate) (bool, string) {
	if ok, reason := f.filter.Eligible(c.URL); !ok {
		return false, reason
	}
	if c.Depth > f.depthLimit {
		return false, RejectDepth
	}

	hash, err := HashURL(c.URL)
	if err != nil {
		return false, RejectScheme
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false, RejectQuota
	}
	if _, dup := f.seen[hash]; dup {
		return false, RejectDuplicate
	}
	// Short-circuit only: acceptance-time quota enforcement lives in the
	// orchestrator, this just avoids fetches that could never be accepted.
	if f.quota != nil && f.quota.Reached(c.TargetLanguage) {
		return false, RejectQuota
	}
	f.seen[hash] = struct{}{}

	req := FetchRequest{
		URL:       c.URL,
		DomainKey: Domain(c.URL),
		Preferred: f.filter.Preferred(c.URL, c.TargetLanguage),
		Meta: RequestMeta{
			Depth:          c.Depth,
			Referrer:       c.Referrer,
			TargetLanguage: c.TargetLanguage,
		},
	}
	if req.Preferred {
		f.preferred = append(f.preferred, req)
	} else {
		f.normal = append(f.normal, req)
	}
	f.cond.Broadcast()
	return true, ""
}

// Next blocks until a request is available and returns it, marking one
// unit of work in flight. It returns false when the frontier is closed or
// when the queue is empty with no work in flight, which means the run is
// complete.
func (f *Frontier) Next() (FetchRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.preferred) == 0 && len(f.normal) == 0 {
		if f.closed || f.inflight == 0 {
			return FetchRequest{}, false
		}
		f.cond.Wait()
	}
	if f.closed {
		return FetchRequest{}, false
	}

	var req FetchRequest
	if len(f.preferred) > 0 {
		req = f.preferred[0]
		f.preferred = f.preferred[1:]
	} else {
		req = f.normal[0]
		f.normal = f.normal[1:]
	}
	f.inflight++
	return req, true
}

// Done marks one in-flight unit of work as finished. It must be called
// exactly once per successful Next.
func (f *Frontier) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inflight--
	if f.inflight == 0 {
		// Wake blocked workers so they can observe completion.
		f.cond.Broadcast()
	}
}

// Close stops admission and wakes every blocked worker. In-flight work is
// allowed to complete; this is the soft-stop used on quota exhaustion and
// context cancellation.
func (f *Frontier) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.preferred = nil
	f.normal = nil
	f.cond.Broadcast()
}

// Pending returns the number of queued requests.
func (f *Frontier) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.preferred) + len(f.normal)
}
