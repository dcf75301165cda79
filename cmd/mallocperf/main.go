package main

import "fmt"
import "math/rand"
import "os"
import "reflect"
import "sort"
import "strconv"
import "sync"
import "sync/atomic"
import "time"
import "unsafe"

import "github.com/bnclabs/golog"
import "github.com/cloudfoundry/gosigar"
import "github.com/dustin/go-humanize"
import "github.com/spaolacci/murmur3"
import s "github.com/prataprc/gosettings"

import "github.com/bnclabs/gomalloc/lib"
import "github.com/bnclabs/gomalloc/malloc"

// blockmsg hands a live block from an allocator goroutine to a freer
// goroutine, with a checksum of the payload as written.
type blockmsg struct {
	ptr  unsafe.Pointer
	size int64
	hash uint64
}

var ccallocated, ccfreed int64

func main() {
	ca := newCmdArgs(os.Stderr)
	if err := ca.parse(os.Args[1:]); err != nil {
		os.Exit(1)
	} else if ca.help {
		os.Exit(0)
	}
	log.SetLogger(nil, map[string]interface{}{
		"log.level": ca.Log, "log.file": "",
	})
	malloc.LogComponents("all")

	sizes := parsesizes(ca.Sizes)
	seed := ca.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	setts := malloc.Defaultsettings().Mixin(s.Settings{
		"chunksize": ca.Chunk, "heap": ca.Heap,
	})
	m := malloc.New(setts)

	var awg, fwg sync.WaitGroup
	chans := make([]chan blockmsg, 0, ca.Routines)
	hists := make([]*lib.HistogramInt64, 0, ca.Routines)
	maxsize := sizes[len(sizes)-1]
	width := (maxsize / 10) + 1
	for n := 0; n < ca.Routines; n++ {
		chans = append(chans, make(chan blockmsg, 1000))
		hists = append(hists, lib.NewhistogramInt64(0, maxsize, width))
	}

	start := time.Now()
	awg.Add(ca.Routines)
	fwg.Add(ca.Routines)
	for n := 0; n < ca.Routines; n++ {
		go allocator(
			m.Newcache(), byte(n), ca.Repeat, sizes, seed+int64(n),
			chans, hists[n], &awg)
		go freer(m.Newcache(), chans[n], &fwg)
	}
	awg.Wait()
	for _, ch := range chans {
		close(ch)
	}
	fwg.Wait()
	elapsed := time.Since(start)

	total := int64(ca.Routines) * int64(ca.Repeat)
	rate := float64(total) / elapsed.Seconds()
	fmt.Printf("%v allocations in %v (%.0f allocs/sec)\n", total, elapsed, rate)
	fmt.Printf("payload allocated:%v freed:%v\n",
		humanize.IBytes(uint64(ccallocated)), humanize.IBytes(uint64(ccfreed)))

	hist := hists[0]
	for _, h := range hists[1:] {
		hist.Merge(h)
	}
	fmt.Printf("sizes mean:%v sd:%.2f distribution:%v\n",
		hist.Mean(), hist.Sd(), hist.Buckets())

	heap, alloc, ngrows, ndonates, ntakes := m.Info()
	fmt.Printf("heap:%v alloc:%v ngrows:%v ndonates:%v ntakes:%v\n",
		humanize.IBytes(uint64(heap)), humanize.IBytes(uint64(alloc)),
		ngrows, ndonates, ntakes)
	m.Logstats()

	mem := sigar.Mem{}
	mem.Get()
	fmt.Printf("system memory total:%v used:%v free:%v\n",
		humanize.IBytes(mem.Total), humanize.IBytes(mem.Used),
		humanize.IBytes(mem.Free))
}

func allocator(
	tc *malloc.Cache, n byte, repeat int, sizes []int64, seed int64,
	chans []chan blockmsg, hist *lib.HistogramInt64, wg *sync.WaitGroup) {

	defer wg.Done()

	r := rand.New(rand.NewSource(seed))
	var block []byte
	dst := (*reflect.SliceHeader)(unsafe.Pointer(&block))

	maxsize := sizes[len(sizes)-1]
	src := make([]byte, maxsize)
	for i := range src {
		src[i] = n
	}

	for i := 0; i < repeat; i++ {
		size := sizes[r.Intn(len(sizes))]
		ptr := tc.Alloc(size)
		if x := tc.Chunklen(ptr); x < size {
			panic(fmt.Errorf("expected capacity >= %v, got %v", size, x))
		}
		dst.Data, dst.Len, dst.Cap = (uintptr)(ptr), int(size), int(size)
		copy(block, src)
		msg := blockmsg{ptr: ptr, size: size, hash: murmur3.Sum64(block)}
		chans[r.Intn(len(chans))] <- msg
		hist.Add(size)
		atomic.AddInt64(&ccallocated, size)
	}
}

func freer(tc *malloc.Cache, ch chan blockmsg, wg *sync.WaitGroup) {
	defer wg.Done()

	var block []byte
	dst := (*reflect.SliceHeader)(unsafe.Pointer(&block))

	for msg := range ch {
		dst.Data, dst.Len = (uintptr)(msg.ptr), int(msg.size)
		dst.Cap = int(msg.size)
		if hash := murmur3.Sum64(block); hash != msg.hash {
			panic(fmt.Errorf("payload corrupted, %x != %x", hash, msg.hash))
		}
		tc.Free(msg.ptr)
		atomic.AddInt64(&ccfreed, msg.size)
	}
}

func parsesizes(input string) []int64 {
	sizes := make([]int64, 0)
	for _, field := range lib.Parsecsv(input) {
		size, err := strconv.ParseInt(field, 10, 64)
		if err != nil || size <= 0 {
			fmt.Fprintf(os.Stderr, "bad size %q\n", field)
			os.Exit(1)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no allocation sizes")
		os.Exit(1)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}
