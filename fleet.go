package parquetcore

import "sync"

// FileFleet scans upcoming files' metadata, schema, and page descriptors on
// background workers so a RowReader streaming across many files never
// stalls on a footer parse (spec.md §5). It keeps at most PrefetchFiles
// files scanned-but-unconsumed ahead of the reader, the way the teacher's
// compress.go bounds allocation with a reusable pool rather than letting
// work run unboundedly ahead of its consumer.
type FileFleet struct {
	paths   []string
	columns []int

	mu      sync.Mutex
	cond    *sync.Cond
	results map[int]*fleetResult
	next    int // index of the next file Next() will hand out
	issued  int // index of the next file a worker will claim
	closed  bool
}

type fleetResult struct {
	state *FileState
	err   error
	ready bool
}

// NewFileFleet starts scanning paths in order, using workers background
// goroutines, keeping at most prefetch files' state buffered ahead of the
// consumer at any time.
func NewFileFleet(paths []string, columns []int, prefetch, workers int) *FileFleet {
	if prefetch < 1 {
		prefetch = 1
	}
	if workers < 1 {
		workers = 1
	}
	f := &FileFleet{
		paths:   paths,
		columns: columns,
		results: make(map[int]*fleetResult, prefetch),
	}
	f.cond = sync.NewCond(&f.mu)

	jobs := make(chan int)
	go f.dispatch(jobs, prefetch)
	for w := 0; w < workers; w++ {
		go f.work(jobs)
	}
	return f
}

// dispatch feeds file indices to workers, blocking whenever the window of
// issued-but-not-yet-consumed files reaches prefetch.
func (f *FileFleet) dispatch(jobs chan<- int, prefetch int) {
	defer close(jobs)
	for i := range f.paths {
		f.mu.Lock()
		for !f.closed && f.issued-f.next >= prefetch {
			f.cond.Wait()
		}
		closed := f.closed
		f.issued++
		f.mu.Unlock()
		if closed {
			return
		}
		jobs <- i
	}
}

func (f *FileFleet) work(jobs <-chan int) {
	for idx := range jobs {
		state, err := OpenFileState(f.paths[idx], f.columns)
		f.mu.Lock()
		f.results[idx] = &fleetResult{state: state, err: err, ready: true}
		f.cond.Broadcast()
		f.mu.Unlock()
	}
}

// HasNext reports whether any file remains to be handed out via Next.
func (f *FileFleet) HasNext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next < len(f.paths)
}

// Next blocks until the next file in order finishes scanning, then returns
// its FileState, widening the prefetch window by one slot.
func (f *FileFleet) Next() (*FileState, error) {
	f.mu.Lock()
	if f.next >= len(f.paths) {
		f.mu.Unlock()
		return nil, Error(IndexOutOfRange, "no more files in fleet", nil)
	}
	idx := f.next
	for {
		r, ok := f.results[idx]
		if ok && r.ready {
			delete(f.results, idx)
			f.next++
			f.cond.Broadcast()
			f.mu.Unlock()
			return r.state, r.err
		}
		f.cond.Wait()
	}
}

// Close stops dispatching new work and closes any scanned-but-unconsumed
// FileState still buffered.
func (f *FileFleet) Close() error {
	f.mu.Lock()
	f.closed = true
	f.cond.Broadcast()
	var firstErr error
	for idx, r := range f.results {
		if r.ready && r.state != nil {
			if err := r.state.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		delete(f.results, idx)
	}
	f.mu.Unlock()
	return firstErr
}
