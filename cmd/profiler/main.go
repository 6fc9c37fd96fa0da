package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"os"
	"runtime"
	"strconv"
	"time"

	arraylist "github.com/ThiefOfBagEnd/Binary-Array-List"
)

func main() {
	// เปิด pprof endpoint ผ่าน HTTP server ซึ่งทำงานใน goroutine แยกต่างหาก
	go func() {
		fmt.Println("Starting pprof server on http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Fatalf("pprof server failed: %v", err)
		}
	}()

	// รอให้ server เริ่มทำงานสักครู่
	time.Sleep(100 * time.Millisecond)

	numItems, allocatorType := parseArgs()

	fmt.Println("Starting arraylist append workload...")
	fmt.Printf(" - Items to append: %d\n", numItems)
	fmt.Printf(" - Allocator: %s\n", allocatorType)

	l := createList(allocatorType)

	// เพิ่มข้อมูลจำนวนมากเพื่อสร้างภาระงาน: append ทั้งหมด แล้วลบครึ่งกลางทิ้ง
	// เพื่อให้เห็นทั้งเส้นทางการขยายและการย้ายข้อมูลใน profile
	for i := 0; i < numItems; i++ {
		if err := l.Append(i); err != nil {
			log.Fatalf("append failed: %v", err)
		}
	}
	if err := l.RemoveRange(numItems/4, numItems*3/4); err != nil {
		log.Fatalf("remove range failed: %v", err)
	}

	fmt.Printf("Finished. List length: %d, capacity: %d\n", l.Len(), l.Cap())
	fmt.Println("Program is keeping alive for profiling. Press Ctrl+C to exit.")

	// ทำให้โปรแกรมทำงานค้างไว้เพื่อให้เชื่อมต่อ pprof server ได้
	select {}
}

// parseArgs แยกวิเคราะห์ arguments จาก command-line
// Usage: go run ./cmd/profiler [allocator_type] [num_items]
// Example: go run ./cmd/profiler recycle 5000000
func parseArgs() (numItems int, allocatorType string) {
	// Default values
	allocatorType = "heap"
	numItems = 2_000_000

	if len(os.Args) > 1 {
		allocatorType = os.Args[1]
	}
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil {
			numItems = n
		}
	}
	return numItems, allocatorType
}

// createList สร้าง ArrayList ตาม allocator ที่ระบุใน command-line
func createList(allocatorType string) *arraylist.ArrayList[int] {
	if allocatorType == "recycle" {
		fmt.Println("Using recycling allocator")
		return arraylist.New[int](arraylist.WithRecycling[int]())
	}

	fmt.Println("Using heap allocator (default)")
	runtime.GC() // สั่งให้ GC ทำงานเพื่อดู memory ก่อนเริ่ม
	return arraylist.New[int]()
}
