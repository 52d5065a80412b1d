// Command charter-backend serves canned responses for the basic-data, vessel and
// employee services so charterdesk can run locally. Point all three upstream URLs
// at it.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort      = "9000"
	defaultLatencyMs = "50"
	successCode      = 200
)

type envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

var latency = time.Duration(getEnvInt("LATENCY_MS", defaultLatencyMs)) * time.Millisecond

// lists are keyed by request path. Unlisted paths answer an empty list.
var lists = map[string]any{
	"/currencyInfo/dropDownList": []map[string]any{
		{"currencyCode": "CNY", "cnName": "人民币", "isEnable": 1},
		{"currencyCode": "USD", "cnName": "美元", "isEnable": 1},
	},
	"/guestBusiness/getGuestBusinessList": []map[string]any{
		{"id": 1, "code": "GB001", "customerFullName": "远洋航运有限公司", "guestRating": 1, "isEnable": 1},
		{"id": 2, "code": "GB002", "customerFullName": "海丰物流", "guestRating": 2, "isEnable": 0},
	},
	"/vesselInfo/listAll": []map[string]any{
		{"code": "V001", "cnName": "长风号", "vesselType": "BULK"},
	},
	"/port/list": []map[string]any{
		{"code": "CNSHA", "portCnName": "上海"},
		{"code": "SGSIN", "portCnName": "新加坡"},
	},
	"/goodsInfo/list": []map[string]any{
		{"goodsCode": "G01", "goodsCnName": "铁矿石"},
	},
	"/employee/selectAll": []map[string]any{
		{"employeeId": 1001, "employeeName": "张三"},
	},
	"/countryInfo/getAll": []map[string]any{
		{"code": "CN", "countryCnName": "中国"},
	},
	"/voyageNoConfig/list": []map[string]any{
		{"voyageCode": "VY001", "voyageNo": "2401", "vesselCode": "V001"},
	},
}

var details = map[string]any{
	"/contractExternal/getById": map[string]any{
		"id": 1, "code": "CE001", "contractNo": "TC-2024-001",
		"contractType": 1, "approvalStatus": 1, "vesselCode": "V001",
		"guestBusinessCode": "GB001", "currencyCode": "USD",
		"signDate": "2024-03-01", "totalAmount": 1250000.5,
		"createTime": "2024-03-01 09:30:00",
	},
	"/externalVoyage/getVoyageByContractCode": map[string]any{"id": 7},
	"/externalVoyage/getById": map[string]any{
		"id": 7, "vesselName": "长风号", "voyageNo": "2401",
	},
	"/paymentOrder/detail": map[string]any{
		"id": 11, "code": "PO001", "paymentNo": "FK-2024-0011", "status": 1,
		"applyAmt": 30000, "currency": "USD", "payee": "GB001",
		"intermediateBankFlag": 0, "createTime": "2024-03-05 14:00:00",
	},
	"/receiptOffsetApply/detail": map[string]any{
		"id": 21, "code": "RO001", "offsetNo": "HX-2024-0021", "status": 2,
		"verificationType": 1, "receiptAmt": 50000, "offsetAmt": 48000,
		"createTime": "2024-03-06 10:15:00",
	},
}

func main() {
	port := getEnv("PORT", defaultPort)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /", handleCall)

	log.Printf("mock charter backend on port %s (latency %s)", port, latency)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "charter-backend"})
}

func handleCall(w http.ResponseWriter, r *http.Request) {
	time.Sleep(latency)

	if r.Header.Get("Authorization") == "" {
		writeJSON(w, http.StatusUnauthorized, envelope{Code: 401, Message: "missing token"})
		return
	}
	if detail, ok := details[r.URL.Path]; ok {
		if r.URL.Query().Get("id") == "404" {
			writeJSON(w, http.StatusOK, envelope{Code: 500, Message: "record not found"})
			return
		}
		writeJSON(w, http.StatusOK, envelope{Code: successCode, Data: detail, Message: "success"})
		return
	}
	data, ok := lists[r.URL.Path]
	if !ok {
		data = []any{}
	}
	writeJSON(w, http.StatusOK, envelope{Code: successCode, Data: data, Message: "success"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key, fallback string) int {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}
